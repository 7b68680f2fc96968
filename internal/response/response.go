package response

import "github.com/gin-gonic/gin"

// Envelope is the uniform API response shape. Success responses carry
// status "ok" and data; failures carry the failure kind as status, a
// message, and optionally structured detail in data.
type Envelope struct {
	Status  Kind        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK sends a successful envelope with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	c.JSON(KindOK.HTTPStatus(), Envelope{
		Status: KindOK,
		Data:   data,
	})
}

// Fail sends an error envelope for the given kind and message.
func Fail(c *gin.Context, kind Kind, message string) {
	c.JSON(kind.HTTPStatus(), Envelope{
		Status:  kind,
		Message: message,
	})
}

// FailWithData sends an error envelope with structured detail attached,
// e.g. field-level validation errors.
func FailWithData(c *gin.Context, kind Kind, message string, data interface{}) {
	c.JSON(kind.HTTPStatus(), Envelope{
		Status:  kind,
		Message: message,
		Data:    data,
	})
}

// AbortFail aborts the middleware chain and sends an error envelope.
func AbortFail(c *gin.Context, kind Kind, message string) {
	c.AbortWithStatusJSON(kind.HTTPStatus(), Envelope{
		Status:  kind,
		Message: message,
	})
}
