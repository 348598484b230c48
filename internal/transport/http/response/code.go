package response

// auth 路径的业务 code，前端按字符串匹配
const (
	CodeEmailInUse        = "auth/email-already-in-use"
	CodeInvalidCredential = "auth/invalid-credential"
)
