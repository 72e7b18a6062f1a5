package cli

import (
	"github.com/roach88/katas/internal/casefile"
	"github.com/roach88/katas/internal/harness"
)

var kindCodes = map[string]string{
	casefile.ErrKindDuplicatePart:     ErrCodeDuplicatePart,
	casefile.ErrKindOrderViolation:    ErrCodeOrderViolation,
	casefile.ErrKindInvalidCombinator: ErrCodeInvalidCombinator,
	casefile.ErrKindSyntax:            ErrCodeSyntax,
	casefile.ErrKindInvalidTile:       ErrCodeInvalidTile,
	casefile.ErrKindInvalidSize:       ErrCodeInvalidSize,
}

// failKata reports a kata rejection with the error code for its kind.
func failKata(f *OutputFormatter, kind string, err error) error {
	code, ok := kindCodes[harness.ErrorKind(kind, err)]
	if !ok {
		code = ErrCodeGeneric
	}
	return f.Fail(ExitFailure, code, err.Error(), nil)
}
