package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// MAX_MONTHS caps the rolling window any series endpoint will compute
const MAX_MONTHS = 36

// MonthsQueryParams holds the months window shared by the series endpoints.
// A zero value means "use the handler's configured default".
type MonthsQueryParams struct {
	Months int `form:"months,default=0"`
}

// ParseMonthsQuery parses and validates the months window
func ParseMonthsQuery(c *gin.Context, defaultMonths int) (int, error) {
	var params MonthsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return 0, err
	}

	if params.Months == 0 {
		return defaultMonths, nil
	}
	if params.Months < 0 || params.Months > MAX_MONTHS {
		return 0, fmt.Errorf("months must be between 1 and %d", MAX_MONTHS)
	}
	return params.Months, nil
}

// ProxyQueryParams holds query parameters for GET /proxy/:vendor
type ProxyQueryParams struct {
	Endpoint string `form:"endpoint"`
}

// ParseProxyQuery parses the proxy endpoint parameter
func ParseProxyQuery(c *gin.Context) (*ProxyQueryParams, error) {
	var params ProxyQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Endpoint == "" {
		return nil, fmt.Errorf("endpoint query parameter is required")
	}
	return &params, nil
}
