// Package migrations embeds the SQL schema for every supported database driver.
package migrations

import (
	"embed"
	"fmt"
)

//go:embed postgresql/*.sql mysql/*.sql sqlite/*.sql
var FS embed.FS

// Dir returns the embedded directory holding the migrations for driver.
func Dir(driver string) (string, error) {
	switch driver {
	case "postgres":
		return "postgresql", nil
	case "mysql":
		return "mysql", nil
	case "sqlite":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}
