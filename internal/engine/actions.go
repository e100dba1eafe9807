package engine

import (
	"fmt"

	"github.com/conveyorci/conveyor/internal/errors"
)

// CheckoutAction is the builtin action reference available without
// configuration. It copies the host-provided checkout location into the
// step working directory.
const CheckoutAction = "checkout"

// ActionResolver maps step `uses` references to the shell commands that
// implement them. Beyond this lookup the referenced action is opaque to the
// engine: it is launched exactly like an inline run command.
type ActionResolver struct {
	table       map[string]string
	checkoutDir string
}

// NewActionResolver creates a resolver over the configured action table.
// checkoutDir is the host-provided checkout location consumed by the
// builtin checkout action; it may be empty, in which case resolving
// checkout fails at launch time.
func NewActionResolver(table map[string]string, checkoutDir string) *ActionResolver {
	return &ActionResolver{table: table, checkoutDir: checkoutDir}
}

// Resolve returns the shell command implementing the action reference.
// A configured entry wins over the builtin of the same name. An
// unresolvable reference is a launch failure: the caller feeds the error
// into the same status path as a non-zero exit.
func (r *ActionResolver) Resolve(ref string) (string, error) {
	if command, ok := r.table[ref]; ok {
		return command, nil
	}

	if ref == CheckoutAction {
		if r.checkoutDir == "" {
			return "", errors.Wrap(errors.ErrCheckoutDirUnset, "checkout action")
		}
		// Trailing /. copies directory contents, not the directory itself.
		return fmt.Sprintf("cp -a %q/. .", r.checkoutDir), nil
	}

	return "", errors.Wrapf(errors.ErrActionNotFound, "%q", ref)
}
