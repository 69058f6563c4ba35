package main

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

const (
	exitOK = 0
	// exitPartial: the run produced output but recorded recoverable
	// conditions (missing sheets, unlinked rows, duplicate companies).
	exitPartial = 3
	exitUsage   = 2
	exitDB      = 4
)

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: code, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ce *cliError
	if as(err, &ce) {
		return ce.code
	}
	return 1
}
