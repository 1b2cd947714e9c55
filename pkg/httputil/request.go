package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/finboard/backend/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidQuery     = errors.New("the query string contains unparseable data")
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// QueryMonth parses the month in the query parameter. If the parameter
// is not set, the month of now is returned.
func QueryMonth(c *gin.Context, param string, now time.Time) (types.Month, error) {
	value, ok := c.GetQuery(param)
	if !ok || value == "" {
		return types.MonthOf(now), nil
	}

	month, err := types.ParseMonth(value)
	if err != nil {
		return types.Month{}, fmt.Errorf("%w: %s: %w", ErrInvalidQuery, param, err)
	}
	return month, nil
}

// QueryInt parses the integer in the query parameter, falling back to
// fallback if it is not set.
func QueryInt(c *gin.Context, param string, fallback int) (int, error) {
	value, ok := c.GetQuery(param)
	if !ok || value == "" {
		return fallback, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidQuery, param)
	}
	return i, nil
}
