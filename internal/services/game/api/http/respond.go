package httpapi

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/sirupsen/logrus"

	apperrors "github.com/louisbranch/lastwalk/internal/platform/errors"
	"github.com/louisbranch/lastwalk/internal/platform/errors/i18n"
	"github.com/louisbranch/lastwalk/internal/platform/httpx"
	"github.com/louisbranch/lastwalk/internal/services/game/api/http/schemas"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/turn"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 64 << 10

// readBody reads r's body and checks it against schema.
func readBody(r *http.Request, schema schemas.Name) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeValidationFailed, "read request body", err)
	}
	if err := schemas.Validate(schema, raw); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeValidationFailed, fmt.Sprintf("validate %s", schema), err)
	}
	return raw, nil
}

// writeError renders err as a localized JSON error. Errors without a domain
// code are logged and reported as internal.
func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error, extra map[string]any) {
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeUnknown {
		code = apperrors.CodeInternal
	}
	status := code.HTTPStatus()

	var metadata map[string]string
	if appErr, ok := apperrors.As(err); ok {
		metadata = appErr.Metadata
	}
	var distErr *turn.DistanceExceededError
	if errors.As(err, &distErr) {
		if extra == nil {
			extra = map[string]any{}
		}
		extra["distance"] = roundKm(distErr.Distance)
		extra["maxDistance"] = distErr.Limit
	}

	entry := h.logger.WithFields(logrus.Fields{
		"code":       string(code),
		"path":       r.URL.Path,
		"request_id": httpx.RequestIDFrom(r),
	})
	if status >= http.StatusInternalServerError {
		entry.WithError(err).Error("request failed")
	} else {
		entry.WithError(err).Debug("request rejected")
	}

	catalog := i18n.ForAcceptLanguage(r.Header.Get("Accept-Language"))
	body := map[string]any{"code": string(code)}
	for k, v := range extra {
		body[k] = v
	}
	_ = httpx.WriteJSONError(w, status, catalog.Format(string(code), metadata), body)
}

func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
