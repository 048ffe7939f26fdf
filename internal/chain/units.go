package chain

import (
	"math/big"
	"net/url"

	"github.com/shopspring/decimal"
)

// FormatEther renders a wei amount as an exact decimal ether string.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -18).String()
}

// RedactURL keeps the scheme and host of a provider URL. User info, path and
// query often carry API keys and are dropped.
func RedactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "***"
	}
	out := u.Scheme + "://" + u.Host
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.User != nil {
		out += "/***"
	}
	return out
}
