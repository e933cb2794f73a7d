package category

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"organize/internal/fileutil"
)

//go:embed categories.toml
var categoriesTOML []byte

// Category names a destination bucket for files sharing a class of extensions.
// The string value is also the folder name created under the target directory.
type Category string

// Other receives files whose extension is unknown, empty, or absent.
const Other Category = "Other"

var (
	extensionTable map[string]Category
	names          []Category
)

func init() {
	table, list, err := loadTable(categoriesTOML)
	if err != nil {
		panic(fmt.Sprintf("category: invalid embedded table: %v", err))
	}
	extensionTable = table
	names = list
}

func loadTable(raw []byte) (map[string]Category, []Category, error) {
	var doc struct {
		Categories map[string][]string `toml:"categories"`
	}
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, err
	}
	if len(doc.Categories) == 0 {
		return nil, nil, fmt.Errorf("no categories defined")
	}

	table := make(map[string]Category)
	list := make([]Category, 0, len(doc.Categories)+1)
	for name, extensions := range doc.Categories {
		cat := Category(name)
		list = append(list, cat)
		for _, ext := range extensions {
			ext = strings.ToLower(strings.TrimPrefix(ext, "."))
			if ext == "" {
				return nil, nil, fmt.Errorf("category %s: empty extension", name)
			}
			if owner, ok := table[ext]; ok {
				return nil, nil, fmt.Errorf("extension %q claimed by both %s and %s", ext, owner, cat)
			}
			table[ext] = cat
		}
	}
	list = append(list, Other)
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return table, list, nil
}

// Classify maps a file name to its category. The extension is matched
// case-insensitively; unknown extensions, extensionless names, and dotfiles
// classify as Other.
func Classify(name string) Category {
	_, ext := fileutil.SplitExt(name)
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if cat, ok := extensionTable[ext]; ok {
		return cat
	}
	return Other
}

// Names returns every category in sorted order, Other included.
func Names() []Category {
	out := make([]Category, len(names))
	copy(out, names)
	return out
}
