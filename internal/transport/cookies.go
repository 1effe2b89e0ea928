package transport

import "net/http"

// Cookies returns a base round tripper that behaves like a browser for
// credentialed requests: jar cookies are attached when the request is sent
// and Set-Cookie headers of the response are stored back into the jar.
// Requests that are not credentialed pass through untouched.
func Cookies(jar http.CookieJar, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
		if jar == nil || !HasCredentials(r.Context()) {
			return base.RoundTrip(r)
		}

		out := r.Clone(r.Context())
		for _, c := range jar.Cookies(out.URL) {
			out.AddCookie(c)
		}

		resp, err := base.RoundTrip(out)
		if err != nil {
			return nil, err
		}

		if received := resp.Cookies(); len(received) > 0 {
			jar.SetCookies(out.URL, received)
		}

		return resp, nil
	})
}
