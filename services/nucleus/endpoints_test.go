package nucleus

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/paycrest/nucleus-go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointTable(t *testing.T) {
	ops := Operations()
	assert.Len(t, ops, 35)

	for _, op := range ops {
		desc, err := Lookup(op)
		require.NoError(t, err)

		if desc.Routing == types.APIKeyOnly {
			assert.Empty(t, desc.RoutingField, string(op))
		} else {
			assert.NotEmpty(t, desc.RoutingField, string(op))
		}
	}

	_, err := Lookup(Operation("Nope"))
	var perr *ProgrammingError
	assert.True(t, errors.As(err, &perr))
}

func TestDescriptorHasBody(t *testing.T) {
	tests := map[string]bool{
		"GET":    false,
		"DELETE": false,
		"POST":   true,
		"PATCH":  true,
		"PUT":    true,
	}
	for method, want := range tests {
		assert.Equal(t, want, Descriptor{Method: method}.HasBody(), method)
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		template string
		fields   map[string]json.RawMessage
		want     string
		wantErr  bool
	}{
		{
			name:     "no parameters",
			template: "/card/consumer/list",
			want:     "/card/consumer/list",
		},
		{
			name:     "numeric parameter",
			template: "/card/corporate/fund/{cardId}",
			fields:   map[string]json.RawMessage{"cardId": json.RawMessage(`9`)},
			want:     "/card/corporate/fund/9",
		},
		{
			name:     "string parameter is escaped",
			template: "/card/consumer/{cardId}",
			fields:   map[string]json.RawMessage{"cardId": json.RawMessage(`"a/b c"`)},
			want:     "/card/consumer/a%2Fb%20c",
		},
		{
			name:     "missing parameter",
			template: "/card/consumer/{cardId}",
			fields:   map[string]json.RawMessage{},
			wantErr:  true,
		},
		{
			name:     "empty parameter",
			template: "/card/consumer/{cardId}",
			fields:   map[string]json.RawMessage{"cardId": json.RawMessage(`""`)},
			wantErr:  true,
		},
		{
			name:     "object parameter",
			template: "/card/consumer/{cardId}",
			fields:   map[string]json.RawMessage{"cardId": json.RawMessage(`{"id":1}`)},
			wantErr:  true,
		},
		{
			name:     "malformed template",
			template: "/card/consumer/{card-id}",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePath(OpGetConsumerCard, tt.template, tt.fields)
			if tt.wantErr {
				var perr *ProgrammingError
				assert.True(t, errors.As(err, &perr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitPayload(t *testing.T) {
	t.Run("routing field is removed for every method", func(t *testing.T) {
		desc, _ := Lookup(OpUpdateConsumerCard)
		value, fields, err := splitPayload(OpUpdateConsumerCard, desc, types.UpdateConsumerCardRequest{
			ConsumerRouting: types.ConsumerRouting{CardHolderWalletAddress: "0xB"},
			CardID:          42,
			Label:           "travel",
		})
		require.NoError(t, err)
		assert.Equal(t, "0xB", value)
		assert.NotContains(t, fields, "cardHolderWalletAddress")
		assert.JSONEq(t, `42`, string(fields["cardId"]))
		assert.JSONEq(t, `"travel"`, string(fields["label"]))
	})

	t.Run("API key only requests keep every field", func(t *testing.T) {
		desc, _ := Lookup(OpRegisterDAO)
		value, fields, err := splitPayload(OpRegisterDAO, desc, types.RegisterDAORequest{MultisigAddress: "0xA", OwnerUserID: 7})
		require.NoError(t, err)
		assert.Empty(t, value)
		assert.Len(t, fields, 2)
		assert.Contains(t, fields, "multisigAddress")
	})

	t.Run("nil request", func(t *testing.T) {
		fields, err := encodeFields(nil)
		require.NoError(t, err)
		assert.Empty(t, fields)
	})

	t.Run("non-object request", func(t *testing.T) {
		desc, _ := Lookup(OpRegisterDAO)
		_, _, err := splitPayload(OpRegisterDAO, desc, []string{"0xA"})
		var perr *ProgrammingError
		assert.True(t, errors.As(err, &perr))
	})
}

func TestScalarValue(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: `"0xB"`, want: "0xB"},
		{raw: `42`, want: "42"},
		{raw: `12.50`, want: "12.50"},
		{raw: `true`, wantErr: true},
		{raw: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		got, err := scalarValue(json.RawMessage(tt.raw))
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestRoutingHeaders(t *testing.T) {
	assert.Equal(t, map[string]string{headerWalletAddress: "0xB"}, routingHeaders(types.WalletAddress, "0xB"))
	assert.Equal(t, map[string]string{headerMultisigAddress: "0xC"}, routingHeaders(types.MultisigAddress, "0xC"))
	assert.Empty(t, routingHeaders(types.APIKeyOnly, ""))
}
