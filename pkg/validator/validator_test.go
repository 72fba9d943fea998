package validator

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Nickname string `json:"nickname" binding:"required,min=2,max=50"`
}

func TestParseErrorListsEveryViolation(t *testing.T) {
	UseJSONFieldNames()
	req := registerRequest{Email: "nope", Password: "123", Nickname: ""}
	err := binding.Validator.ValidateStruct(&req)

	got := ParseError(err)
	assert.ElementsMatch(t, []string{
		"email must be a valid email address",
		"password must be at least 6 characters",
		"nickname is required",
	}, got)
}

func TestParseErrorDecodeFailures(t *testing.T) {
	assert.Equal(t, []string{"request body must be valid JSON"}, ParseError(io.EOF))

	var v registerRequest
	err := json.NewDecoder(strings.NewReader(`{"email": 5}`)).Decode(&v)
	assert.Equal(t, []string{"email must be of type string"}, ParseError(err))

	assert.Nil(t, ParseError(nil))
}
