package validate

import "net/url"

func IsPositiveAmount(amount int64) bool {
	return amount > 0
}

func IsCarID(id int64) bool {
	return id > 0
}

// IsImageURL accepts an empty string; a car may be listed without a picture.
func IsImageURL(s string) bool {
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
