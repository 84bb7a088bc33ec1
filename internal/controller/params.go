package controller

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID reads a numeric path parameter. On failure it attaches a bind error
// for the error middleware and returns false; the handler should just return.
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		_ = ctx.Error(fmt.Errorf("invalid %s %q", name, raw)).SetType(gin.ErrorTypeBind)
		return 0, false
	}
	return uint(id), true
}
