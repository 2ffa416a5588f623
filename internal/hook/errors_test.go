package hook

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"branch", &BranchResolutionError{Err: cause}, ExitBranchResolution},
		{"missing argument", &MissingArgumentError{Name: "commit message file"}, ExitMessage},
		{"rewrite", &MessageRewriteError{Path: "m", Err: cause}, ExitMessage},
		{"delegation forwarded", &DelegationError{Code: 5}, 5},
		{"delegation start", &DelegationError{Err: cause}, ExitDelegation},
		{"wrapped", fmt.Errorf("run: %w", &BranchResolutionError{Err: cause}), ExitBranchResolution},
		{"unknown", cause, ExitMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("permission denied")

	assert.Equal(t, "failed to find current branch: permission denied", (&BranchResolutionError{Err: cause}).Error())
	assert.Equal(t, "failed to add work item to m: permission denied", (&MessageRewriteError{Path: "m", Err: cause}).Error())
	assert.Equal(t, "failed to run local git hook: permission denied", (&DelegationError{Err: cause}).Error())
	assert.Equal(t, "local git hook /h exited with status 4", (&DelegationError{Path: "/h", Code: 4}).Error())
}
