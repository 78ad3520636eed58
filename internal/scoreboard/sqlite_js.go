//go:build js

package scoreboard

import "errors"

func openSQLite(string) (Store, error) {
	return nil, errors.New("scoreboard: sqlite is not available in the browser build")
}
