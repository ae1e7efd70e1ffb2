package errors

import "errors"

// ================= 业务领域错误定义 =================
// 所有业务逻辑相关的错误统一在此定义，避免跨包重复定义

// ErrUserNotFound 用户不存在错误
// 当按 clerk_id 或内部 id 操作一个不存在的用户时返回此错误
var ErrUserNotFound = errors.New("user not found in database")

// ErrUserAlreadyExists clerk_id 唯一约束冲突错误
// Webhook 重投递 user.created 事件时可能触发，调用方自行决定是否视为已处理
var ErrUserAlreadyExists = errors.New("user already exists: duplicate clerk_id")

// ErrInvalidPage 分页参数非法错误
// page 必须是从 1 开始的正整数
var ErrInvalidPage = errors.New("invalid page: page number must be >= 1")

// ErrIdentityUnavailable 身份提供方不可用错误
// 自愈式读取需要回源 Clerk API 拉取用户档案，拉取失败时返回此错误
var ErrIdentityUnavailable = errors.New("identity provider unavailable")
