package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// useViper resets the global viper instance for the test and applies
// settings.
func useViper(t *testing.T, settings map[string]interface{}) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	for key, value := range settings {
		viper.Set(key, value)
	}
}

// execute runs cmd with args and returns what it printed.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

type namedItem struct {
	UID  string `json:"Uid"`
	Name string `json:"Name"`
}

// newListServer serves names at path as pages of {metadata, items}.
func newListServer(t *testing.T, path string, names []string) (*httptest.Server, *[]string) {
	t.Helper()

	var queries []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)

			return
		}

		queries = append(queries, r.URL.RawQuery)

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		items := []namedItem{}

		for i := offset * limit; i < len(names) && i < (offset+1)*limit; i++ {
			items = append(items, namedItem{UID: "uid-" + strconv.Itoa(i), Name: names[i]})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"metadata": map[string]int{"limit": limit, "offset": offset, "total": len(names)},
			"items":    items,
		})
	}))
	t.Cleanup(server.Close)

	return server, &queries
}
