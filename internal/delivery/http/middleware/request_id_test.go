package middleware

import (
	"net/http"
	"strings"
	"testing"

	deliverycontext "wardrobe/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "generated when absent"},
		{name: "client id reused", incoming: "client-req-42", reuse: true},
		{name: "oversized id replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "id with spaces replaced", incoming: "two words"},
	}

	m := NewRequestIDMiddleware(newDiscardLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(http.MethodGet, "/health")
			if tt.incoming != "" {
				c.Request().Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}

			var seen string
			err := m.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestID(c)
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.reuse {
				assert.Equal(t, tt.incoming, seen)

				return
			}
			_, err = uuid.Parse(seen)
			assert.NoError(t, err)
		})
	}
}
