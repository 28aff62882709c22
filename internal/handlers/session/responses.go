package session

import "github.com/FlagBrew/digidex/internal/dex"

type toggleResponse struct {
	Result  string   `json:"result"`
	Session dex.View `json:"session"`
}
