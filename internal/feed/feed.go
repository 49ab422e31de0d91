// Package feed reads the classification (CNAE) table shipped by the Receita
// Federal as delimited text into store rows.
package feed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/farxc/cnpj_registry/internal/store"
)

// ErrEmptyFeed is returned when a feed has a header but no rows.
var ErrEmptyFeed = errors.New("feed is empty")

var encodings = map[string]encoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
}

type Options struct {
	Delimiter rune
	// Encoding names the source charset. Empty or "utf-8" reads as is.
	Encoding          string
	CodeColumn        string
	DescriptionColumn string
	// Headerless feeds carry exactly two columns, code then description,
	// as in the Receita dump.
	Headerless bool
}

func DefaultOptions() Options {
	return Options{
		Delimiter:         ';',
		Encoding:          "windows-1252",
		CodeColumn:        "codigo",
		DescriptionColumn: "descricao",
	}
}

// OpenFileAndDecode reads the feed at path into a dataframe. Every column is
// kept as text so codes with leading zeros survive.
func OpenFileAndDecode(path string, opts Options) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	return Decode(file, opts)
}

func Decode(r io.Reader, opts Options) (dataframe.DataFrame, error) {
	name := strings.ToLower(opts.Encoding)
	if name != "" && name != "utf-8" && name != "utf8" {
		enc, ok := encodings[name]
		if !ok {
			return dataframe.DataFrame{}, fmt.Errorf("unsupported encoding %q", opts.Encoding)
		}
		r = enc.NewDecoder().Reader(r)
	}

	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = ';'
	}

	if opts.Headerless {
		header := opts.CodeColumn + string(delimiter) + opts.DescriptionColumn + "\n"
		r = io.MultiReader(strings.NewReader(header), r)
	}

	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(delimiter),
		dataframe.WithLazyQuotes(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if err := df.Error(); err != nil {
		return dataframe.DataFrame{}, err
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, ErrEmptyFeed
	}
	return df, nil
}

// Classifications turns feed rows into store rows. Rows whose code has no
// digits or whose description is blank are skipped.
func Classifications(df dataframe.DataFrame, opts Options) ([]store.Classification, error) {
	for _, col := range []string{opts.CodeColumn, opts.DescriptionColumn} {
		if !hasColumn(df, col) {
			return nil, fmt.Errorf("column %q not found in feed (have %v)", col, df.Names())
		}
	}

	items := make([]store.Classification, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		code, ok := ParseCode(getStr(opts.CodeColumn, i, &df))
		if !ok {
			continue
		}
		description := strings.TrimSpace(getStr(opts.DescriptionColumn, i, &df))
		if description == "" {
			continue
		}
		items = append(items, store.Classification{Code: code, Description: description})
	}
	return items, nil
}

// ParseCode keeps only the digits of a formatted CNAE code such as
// "0111-3/01".
func ParseCode(raw string) (int, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}

	code, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return code, true
}

func hasColumn(df dataframe.DataFrame, col string) bool {
	for _, name := range df.Names() {
		if name == col {
			return true
		}
	}
	return false
}

func getStr(col string, rowIdx int, df *dataframe.DataFrame) string {
	elem := df.Col(col).Elem(rowIdx)
	if elem.IsNA() {
		return ""
	}
	return elem.String()
}
