package responses

import (
	"math"
	"net/http"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pitchup/internal/apperror"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// Envelope is the uniform body of every response.
type Envelope struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
	Message  string      `json:"message,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

type Metadata struct {
	Timestamp  time.Time   `json:"timestamp"`
	RequestID  string      `json:"requestId,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination holds pagination information.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func NewPagination(page, limit int, total int64) *Pagination {
	if limit <= 0 {
		limit = 10
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func metadata(c *gin.Context) Metadata {
	return Metadata{Timestamp: time.Now().UTC(), RequestID: c.GetString(RequestIDKey)}
}

// emptyIfNil keeps empty lists encoded as [] rather than null.
func emptyIfNil(data interface{}) interface{} {
	if data == nil {
		return nil
	}
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return data
}

// SendSuccess sends a standardized success response.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Success:  true,
		Data:     emptyIfNil(data),
		Message:  message,
		Metadata: metadata(c),
	})
}

// SendPaginated sends a standardized success response for paginated data.
func SendPaginated(c *gin.Context, message string, data interface{}, total int64, page, limit int) {
	meta := metadata(c)
	meta.Pagination = NewPagination(page, limit, total)
	c.JSON(http.StatusOK, Envelope{
		Success:  true,
		Data:     emptyIfNil(data),
		Message:  message,
		Metadata: meta,
	})
}

// SendError sends a standardized error response.
func SendError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Envelope{
		Success:  false,
		Error:    message,
		Metadata: metadata(c),
	})
}

// SendValidation reports every violated rule.
func SendValidation(c *gin.Context, violations []string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Envelope{
		Success:  false,
		Error:    "Validation failed",
		Errors:   violations,
		Metadata: metadata(c),
	})
}

// SendAppError maps a service error onto its status. The error is attached to
// the context so the request logger records the cause.
func SendAppError(c *gin.Context, err error) {
	_ = c.Error(err)
	kind := apperror.KindOf(err)
	c.AbortWithStatusJSON(apperror.HTTPStatus(kind), Envelope{
		Success:  false,
		Error:    apperror.PublicMessage(err),
		Errors:   apperror.ViolationsOf(err),
		Metadata: metadata(c),
	})
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, resourceName string) {
	SendError(c, http.StatusNotFound, resourceName+" not found")
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized access"
	}
	SendError(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access to this resource is forbidden"
	}
	SendError(c, http.StatusForbidden, message)
}
