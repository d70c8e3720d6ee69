package apiclient

import "net/http"

// ResponseInterceptor observes every response (or error) before it is returned by Client.Do.
//
// OnResponse is called for 2xx responses, OnError for transport failures and non-2xx responses (as *ResponseError).
// Either hook may be nil. An OnError hook can recover by returning a response and a nil error.
type ResponseInterceptor struct {
	OnResponse func(res *http.Response) (*http.Response, error)
	OnError    func(err error) (*http.Response, error)
}

// PassThrough returns responses and errors unchanged.
// It is the interceptor installed on the shared client and the place to hang retry, auth refresh or logging later.
var PassThrough = ResponseInterceptor{
	OnResponse: func(res *http.Response) (*http.Response, error) {
		return res, nil
	},
	OnError: func(err error) (*http.Response, error) {
		return nil, err
	},
}

func (c *Client) intercept(res *http.Response, err error) (*http.Response, error) {
	for _, i := range c.interceptors {
		if err != nil {
			if i.OnError != nil {
				res, err = i.OnError(err)
			}
			continue
		}
		if i.OnResponse != nil {
			prev := res
			res, err = i.OnResponse(res)
			// a rejected response is never handed back to the caller
			if err != nil && prev != nil && prev.Body != nil {
				prev.Body.Close()
			}
		}
	}
	return res, err
}
