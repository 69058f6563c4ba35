package synthesis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"

	"github.com/go-faster/errors"
)

// Workflow code prefixes. The schema expects <prefix> followed by 8 uppercase
// hex characters.
const (
	ReferenceCodePrefix     = "PT"
	ChangeRequestCodePrefix = "USERCR"
)

const codeAttempts = 5

// CodeChecker reports whether a candidate code is already taken in the target
// schema.
type CodeChecker interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

// Generator issues workflow codes from a random source. Randomness alone does
// not guarantee uniqueness, so every candidate is checked against the codes
// already issued this run and, when a checker is wired, against the store;
// conflicts are retried a bounded number of times.
type Generator struct {
	source  io.Reader
	checker CodeChecker
	issued  map[string]struct{}
}

// NewGenerator builds a Generator. A nil source falls back to crypto/rand; a
// nil checker skips the store probe.
func NewGenerator(source io.Reader, checker CodeChecker) *Generator {
	if source == nil {
		source = rand.Reader
	}
	return &Generator{
		source:  source,
		checker: checker,
		issued:  make(map[string]struct{}),
	}
}

// Next returns an unused code with the given prefix.
func (g *Generator) Next(ctx context.Context, prefix string) (string, error) {
	for attempt := 0; attempt < codeAttempts; attempt++ {
		var buf [4]byte
		if _, err := io.ReadFull(g.source, buf[:]); err != nil {
			return "", errors.Wrap(err, "read random bytes")
		}
		code := prefix + strings.ToUpper(hex.EncodeToString(buf[:]))
		if _, dup := g.issued[code]; dup {
			continue
		}
		if g.checker != nil {
			exists, err := g.checker.CodeExists(ctx, code)
			if err != nil {
				return "", errors.Wrapf(err, "probe code %s", code)
			}
			if exists {
				continue
			}
		}
		g.issued[code] = struct{}{}
		return code, nil
	}
	return "", errors.Errorf("no unused %s code after %d attempts", prefix, codeAttempts)
}
