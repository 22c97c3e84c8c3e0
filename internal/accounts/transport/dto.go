package transport

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// DeleteUserRequest is the data member of a deleteUser invocation.
type DeleteUserRequest struct {
	UID string `json:"uid" validate:"required"`
	// NonStringUID is set when uid was present and truthy but not a string.
	NonStringUID bool `json:"-"`
}

// UnmarshalJSON reads uid leniently. Falsy values (null, false, 0, "")
// leave UID empty; any other non-string value sets NonStringUID.
func (r *DeleteUserRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		UID json.RawMessage `json:"uid"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*r = DeleteUserRequest{}
	v := bytes.TrimSpace(raw.UID)
	if len(v) == 0 {
		return nil
	}

	switch v[0] {
	case '"':
		return json.Unmarshal(v, &r.UID)
	case 'n', 'f':
	case 't', '{', '[':
		r.NonStringUID = true
	default:
		// Out-of-range literals parse to ±Inf, which is truthy.
		f, _ := strconv.ParseFloat(string(v), 64)
		r.NonStringUID = f != 0
	}
	return nil
}

// DeleteUserResponse is the result member of every deleteUser invocation,
// successful or not.
type DeleteUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
