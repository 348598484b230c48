package response

// Resp 统一响应：成功时只有 data，失败时 error（必要时带业务 code）
type Resp struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

func OK(data any) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Data: data}
}

func Err(msg string) Resp { return Resp{Error: msg} }

// ErrCode 失败响应附带业务 code（目前只有 auth 路径用）
func ErrCode(msg, code string) Resp { return Resp{Error: msg, Code: code} }
