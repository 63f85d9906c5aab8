// Package featureflags defines the typed view of the remotely sourced flag
// configuration. Flags are fetched once per request, never cached across
// requests, so operators see changes without a deployment.
package featureflags

import (
	"encoding/json"

	"order-service/internal/pkg/errs"
)

// Flag names known to the order service.
const (
	// OpsPreventCreateOrders is the operational kill-switch for order creation.
	OpsPreventCreateOrders = "opsPreventCreateOrders"
	// ReleaseCheckCreateOrderQuantity gates the progressively rolled out
	// quantity limit rule.
	ReleaseCheckCreateOrderQuantity = "releaseCheckCreateOrderQuantity"
	// OpsLimitListOrdersResults caps the number of orders returned by a list.
	OpsLimitListOrdersResults = "opsLimitListOrdersResults"
)

// Flag is a single named toggle with an optional numeric bound. Limit is
// meaningful only for flags that constrain a quantity.
type Flag struct {
	Enabled bool `json:"enabled"`
	Limit   *int `json:"limit,omitempty"`
}

// LimitValue returns the bound, or 0 when the flag carries none.
func (f Flag) LimitValue() int {
	if f.Limit == nil {
		return 0
	}
	return *f.Limit
}

type Flags map[string]Flag

// Get returns the named flag; an absent flag reads as disabled.
func (fs Flags) Get(name string) Flag {
	return fs[name]
}

// Decode validates the raw flag document at the boundary rather than letting
// an untyped value travel inward. Any shape mismatch is an error.
func Decode(raw []byte) (Flags, error) {
	if len(raw) == 0 {
		return nil, errs.New("empty flag configuration document")
	}

	var untyped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &untyped); err != nil {
		return nil, errs.Wrap(err, "malformed flag configuration document")
	}

	flags := make(Flags, len(untyped))
	for name, body := range untyped {
		var flag Flag
		if err := json.Unmarshal(body, &flag); err != nil {
			return nil, errs.Wrap(err, "malformed flag "+name)
		}
		flags[name] = flag
	}
	return flags, nil
}
