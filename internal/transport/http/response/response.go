package response

// Resp is the success envelope. Changes is set by operations that report an
// affected-row count.
type Resp struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Changes *int64      `json:"changes,omitempty"`
}

type ErrResp struct {
	Error string `json:"error"`
}

// OK wraps create and list results.
func OK(data interface{}) Resp {
	return Resp{Message: MsgSuccess, Data: data}
}

func Msg(msg string, data interface{}) Resp {
	return Resp{Message: msg, Data: data}
}

func Changes(msg string, n int64, data interface{}) Resp {
	return Resp{Message: msg, Data: data, Changes: &n}
}

func Error(msg string) ErrResp {
	return ErrResp{Error: msg}
}
