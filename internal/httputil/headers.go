package httputil

import "net/http"

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/144.0.0.0 Safari/537.36"

// WoltAPIHeaders returns the static header set the Wolt web client sends
// on consumer API requests.
func WoltAPIHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json, text/plain, */*")
	h.Set("Accept-Language", "en-GB,en-US;q=0.9,en;q=0.8,ru;q=0.7,az;q=0.6")
	h.Set("App-Language", "az")
	h.Set("Client-Version", "1.16.76")
	h.Set("Clientversionnumber", "1.16.76")
	h.Set("Platform", "Web")
	h.Set("Origin", "https://wolt.com")
	h.Set("Referer", "https://wolt.com/")
	h.Set("User-Agent", defaultUserAgent)
	return h
}
