package ai

import "errors"

// ErrUpstream indicates an LLM or speech-to-text endpoint failure
// (network, auth, quota). Wrapped errors carry the upstream detail.
var ErrUpstream = errors.New("upstream ai failure")
