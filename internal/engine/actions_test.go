package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyorci/conveyor/internal/engine"
	"github.com/conveyorci/conveyor/internal/errors"
)

func TestActionResolver_Resolve_ConfiguredAction(t *testing.T) {
	resolver := engine.NewActionResolver(map[string]string{
		"setup-rust": "rustup toolchain install stable",
	}, "")

	command, err := resolver.Resolve("setup-rust")

	require.NoError(t, err)
	assert.Equal(t, "rustup toolchain install stable", command)
}

func TestActionResolver_Resolve_BuiltinCheckout(t *testing.T) {
	resolver := engine.NewActionResolver(nil, "/srv/checkout")

	command, err := resolver.Resolve(engine.CheckoutAction)

	require.NoError(t, err)
	assert.Equal(t, `cp -a "/srv/checkout"/. .`, command)
}

func TestActionResolver_Resolve_ConfiguredCheckoutWinsOverBuiltin(t *testing.T) {
	resolver := engine.NewActionResolver(map[string]string{
		"checkout": "git clone --depth 1 .",
	}, "/srv/checkout")

	command, err := resolver.Resolve("checkout")

	require.NoError(t, err)
	assert.Equal(t, "git clone --depth 1 .", command)
}

func TestActionResolver_Resolve_CheckoutWithoutDir(t *testing.T) {
	resolver := engine.NewActionResolver(nil, "")

	_, err := resolver.Resolve(engine.CheckoutAction)

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrCheckoutDirUnset)
}

func TestActionResolver_Resolve_UnknownAction(t *testing.T) {
	resolver := engine.NewActionResolver(nil, "/srv/checkout")

	_, err := resolver.Resolve("publish-crate")

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrActionNotFound)
	assert.Contains(t, err.Error(), "publish-crate")
}
