package catalog

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/shopspring/decimal"
)

// catalogSchema constrains catalog files. Prices are validated here so
// a malformed catalog is rejected at startup, before any sale is rung up.
const catalogSchema = `
#Product: {
	id:    int & >=0
	name:  string & !=""
	price: number & >=0
}

products: [...#Product]
`

// productDoc is the decode target for one catalog entry.
type productDoc struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Load reads a CUE catalog file, validates it against the embedded
// schema, and returns the catalog with declaration order preserved.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(path, data)
}

// Parse validates and decodes catalog file contents.
// The filename is used for error positions only.
func Parse(filename string, data []byte) (*Catalog, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(catalogSchema)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("parse catalog: %s", cueerrors.Details(err, nil))
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate catalog: %s", cueerrors.Details(err, nil))
	}

	list := unified.LookupPath(cue.ParsePath("products"))
	if err := list.Err(); err != nil {
		return nil, fmt.Errorf("catalog missing products list: %w", err)
	}

	var docs []productDoc
	if err := list.Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	products := make([]Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, Product{
			ID:    d.ID,
			Name:  d.Name,
			Price: decimal.NewFromFloat(d.Price),
		})
	}

	return New(products), nil
}
