package middleware

// ContextKey 定义 Context 中使用的常量 key
// 避免在代码中硬编码字符串，防止拼写错误导致的 bug

const (
	// ContextKeyClerkID 存储 Clerk subject id 的 Context key
	// ⚠️ 这是外部身份系统的 id，不是 users 表的内部主键
	ContextKeyClerkID = "clerkID"
)
