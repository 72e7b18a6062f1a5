package cli

// Error codes reported in CLIError.Code.
const (
	ErrCodeGeneric    = "E001" // Generic/unknown error
	ErrCodeBadArgs    = "E002" // Malformed command arguments
	ErrCodeLoadFailed = "E004" // Suite failed to load
	ErrCodeNotFound   = "E005" // Path or record not found
	ErrCodeJournal    = "E006" // Journal database error

	// Kata rejections
	ErrCodeDuplicatePart     = "E101" // Selector part given twice
	ErrCodeOrderViolation    = "E102" // Selector parts out of order
	ErrCodeInvalidCombinator = "E103" // Unknown combinator token
	ErrCodeSyntax            = "E104" // Unparseable selector
	ErrCodeInvalidTile       = "E105" // Malformed domino tile
	ErrCodeInvalidSize       = "E106" // Negative matrix size

	ErrCodeCheckFailed = "E_CHECK_FAILED" // One or more cases failed
)
