package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type view struct {
	Name   string   `json:"name"             yaml:"name"`
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
	URL    string   `json:"url,omitempty"    yaml:"url,omitempty"`
}

func TestPrettyJSONString(t *testing.T) {
	t.Parallel()

	got := PrettyJSONString(view{Name: "greet", URL: "https://example.com/?a=1&b=2"})

	assert.Equal(t, "{\n  \"name\": \"greet\",\n  \"url\": \"https://example.com/?a=1&b=2\"\n}", got)
	assert.Empty(t, PrettyJSONString(make(chan int)))
}

func TestPrettyYAMLString(t *testing.T) {
	t.Parallel()

	got := PrettyYAMLString(view{Name: "greet", Params: []string{"name string", "age int"}})

	assert.Equal(t, "name: greet\nparams:\n  - name string\n  - age int", got)
	assert.Empty(t, PrettyYAMLString(make(chan int)))
}
