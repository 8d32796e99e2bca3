package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidAddress(t *testing.T) {
	req := require.New(t)

	req.True(IsValidAddress("0xce4468e7ce84aceb74363f4ea64e5a038176f369"))
	req.True(IsValidAddress("0xCE4468E7CE84ACEB74363F4EA64E5A038176F369"))

	req.False(IsValidAddress(""))
	req.False(IsValidAddress("definitely-not-an-address"))
	req.False(IsValidAddress("ce4468e7ce84aceb74363f4ea64e5a038176f369"))
	req.False(IsValidAddress("0xce4468e7ce84aceb74363f4ea64e5a038176f3"))
}

func TestEthAddrLowerTag(t *testing.T) {
	req := require.New(t)
	v := New()

	type payload struct {
		Addr string `validate:"required,eth_addr_lower"`
	}

	req.NoError(v.Struct(payload{Addr: "0xce4468e7ce84aceb74363f4ea64e5a038176f369"}))
	req.Error(v.Struct(payload{Addr: "definitely-not-an-address"}))
	req.Error(v.Struct(payload{Addr: ""}))
}
