package knowledge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/at-ishikawa/eliana/schemas"
)

// ValidateFile checks the knowledge file at path against the knowledge file schema
// and returns one message per violation. A file that does not exist yet has none.
func ValidateFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemas.Knowledge))
	if err != nil {
		return nil, fmt.Errorf("gojsonschema.NewSchema() > %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(content))
	if err != nil {
		return nil, fmt.Errorf("schema.Validate(%s) > %w", path, err)
	}

	var violations []string
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return violations, nil
}
