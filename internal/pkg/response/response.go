package response

import (
	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/webapi/proxyutil"
)

type codeErr struct {
	code uint32
	msg  string
}

func (e codeErr) Error() string {
	return e.msg
}

func (e codeErr) Code() uint32 {
	return e.code
}

func AsCodeErr(code int, msg string) error {
	return codeErr{code: uint32(code), msg: msg}
}

// Success and Created write the payload as-is; share responses have a
// fixed wire shape that viewers depend on.
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, data)
}

func Error(c *gin.Context, status, code int, message string) {
	proxyutil.FailJson(c, status, AsCodeErr(code, message))
}
