package main

// response is the Ansible module result envelope written to stdout.
type response struct {
	Changed bool   `json:"changed"`
	Failed  bool   `json:"failed,omitempty"`
	Message string `json:"message"`

	// FactsJSON carries the extracted tables wrapped under the
	// ansible_facts key; empty on failure.
	FactsJSON any `json:"facts_json,omitempty"`
}

// failure builds a failed response with the given message.
func failure(msg string) response {
	return response{
		Changed: false,
		Failed:  true,
		Message: msg,
	}
}
