package release

import (
	"context"

	"fastcat.org/go/relkit/shx"
)

// bestEffortOTP asks the hardware key helper for a one-time password for the
// gem registry. Any failure just means pushing without one; the registry will
// prompt interactively if it actually requires a code.
func bestEffortOTP(ctx context.Context) (string, bool) {
	res, err := shx.Run(ctx,
		[]string{"ykman", "oath", "accounts", "code", "-s", "rubygems.org"},
		shx.CaptureOutput(),
	)
	if err != nil || res.Err() != nil {
		return "", false
	}
	code := res.Text()
	return code, code != ""
}
