package hostns

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/xinglu/js-lisp/internal/runtime"
)

// LoadProfile parses a YAML document of top-level name: value pairs and
// installs each as a host namespace binding, converting scalars,
// sequences, and mappings into the kernel's own value kinds. It is the
// embedding API's way of seeding extra host globals without writing Go
// (SPEC_FULL.md §6).
func LoadProfile(doc []byte, host *runtime.HostNamespace) error {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return fmt.Errorf("hostns: parsing profile: %w", err)
	}
	for name, v := range raw {
		host.Set(name, fromYAML(v))
	}
	return nil
}

func fromYAML(v interface{}) runtime.Value {
	switch val := v.(type) {
	case nil:
		return runtime.NullValue
	case bool:
		return runtime.Bool(val)
	case string:
		return runtime.NewString(val)
	case int:
		return runtime.NewNumber(float64(val))
	case int64:
		return runtime.NewNumber(float64(val))
	case uint64:
		return runtime.NewNumber(float64(val))
	case float64:
		return runtime.NewNumber(val)
	case []interface{}:
		items := make([]runtime.Value, len(val))
		for i, item := range val {
			items[i] = fromYAML(item)
		}
		return runtime.NewList(items...)
	case map[string]interface{}:
		obj := runtime.NewObject()
		for k, item := range val {
			obj.SetString(k, fromYAML(item))
		}
		return obj
	default:
		return runtime.NewString(fmt.Sprintf("%v", val))
	}
}
