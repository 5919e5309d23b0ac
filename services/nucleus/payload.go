package nucleus

import (
	"bytes"
	"encoding/json"

	"github.com/paycrest/nucleus-go/types"
)

// splitPayload separates the routing value from the fields that are sent as the body.
// The routing field is always removed, whatever the method, so identity values never reach the payload.
func splitPayload(op Operation, desc Descriptor, req interface{}) (string, map[string]json.RawMessage, error) {
	if routed, ok := req.(types.Routed); ok {
		if kind := routed.Routing().Kind; kind != desc.Routing {
			return "", nil, programmingError(op, "request is routed by %s but the endpoint expects %s", kind, desc.Routing)
		}
	} else if desc.Routing != types.APIKeyOnly {
		return "", nil, programmingError(op, "request %T carries no %s routing group", req, desc.Routing)
	}

	fields, err := encodeFields(req)
	if err != nil {
		return "", nil, programmingError(op, "encoding request: %v", err)
	}

	if desc.Routing == types.APIKeyOnly {
		return "", fields, nil
	}

	raw, ok := fields[desc.RoutingField]
	if !ok {
		return "", nil, programmingError(op, "routing field %q missing from request", desc.RoutingField)
	}
	delete(fields, desc.RoutingField)

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", nil, programmingError(op, "routing field %q is not a string", desc.RoutingField)
	}

	return value, fields, nil
}

// encodeFields turns a request into its top-level JSON members
func encodeFields(req interface{}) (map[string]json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if req == nil {
		return fields, nil
	}

	encoded, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(encoded, []byte("null")) {
		return fields, nil
	}

	if err := json.Unmarshal(encoded, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
