package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid reports a catalog file that cannot be used.
var ErrInvalid = errors.New("invalid catalog")

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Load reads a catalog from a YAML file. An empty path yields the built-in
// catalog.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (Catalog, error) {
	var cat Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := Validate(cat); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// Validate checks that every slot is populated with labelled, distinct options.
func Validate(cat Catalog) error {
	err := validatorInstance().Struct(cat)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Catalog.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " needs at least one option"
	case "unique":
		return field + " has duplicate values"
	default:
		return fmt.Sprintf("%s failed %q", field, fe.Tag())
	}
}
