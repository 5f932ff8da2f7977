package classifier

import (
	"fmt"

	bridge "github.com/wippyai/classifier-bridge"
	"github.com/wippyai/classifier-bridge/errors"
)

// Fixed operation prefixes carried on every translated failure. Callers
// match on these to tell which boundary operation failed.
const (
	initializePrefix = "Error occurred when initializing classifier"
	classifyPrefix   = "Error occurred when classifying the image"
)

// throwInitialize raises an initialize failure through the managed
// exception mechanism. The diagnostic message is preserved verbatim after
// the fixed prefix.
func throwInitialize(t bridge.Thrower, err *errors.Error) {
	t.Throw(bridge.AssertionError, fmt.Sprintf("%s: %s", initializePrefix, err.Message()))
}

// throwClassify raises a classify failure the same way.
func throwClassify(t bridge.Thrower, err *errors.Error) {
	t.Throw(bridge.AssertionError, fmt.Sprintf("%s: %s", classifyPrefix, err.Message()))
}
