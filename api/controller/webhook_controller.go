package controller

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"pixelcraft-server/domain/entity"
	domainErrors "pixelcraft-server/domain/errors"
	"pixelcraft-server/usecase"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
)

// WebhookController 处理 Clerk Webhook 回调
// 签名验证是防伪造身份事件的安全边界：验证不通过的请求不产生任何副作用
type WebhookController struct {
	userUC        *usecase.UserUseCase
	webhookSecret string
}

// NewWebhookController 构造函数
func NewWebhookController(userUC *usecase.UserUseCase, webhookSecret string) *WebhookController {
	return &WebhookController{
		userUC:        userUC,
		webhookSecret: webhookSecret,
	}
}

// ClerkWebhookPayload Clerk Webhook 事件结构
type ClerkWebhookPayload struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ClerkUserData Clerk 用户数据结构
type ClerkUserData struct {
	ID             string `json:"id"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ImageURL  string `json:"image_url"`
}

// HandleClerkWebhook 处理 Clerk Webhook 回调
// POST /webhook/clerk
// 处理 user.created, user.updated, user.deleted 事件；未知类型确认后丢弃
func (wc *WebhookController) HandleClerkWebhook(c *gin.Context) {
	// 1. 密钥缺失时 fail closed：不验证、不处理任何事件
	if wc.webhookSecret == "" {
		log.Println("[Webhook] ❌ 未配置 CLERK_WEBHOOK_SECRET，拒绝处理")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook 未配置"})
		return
	}

	// 2. 三个签名头必须齐全，缺任何一个都不进入验证
	svixID := c.GetHeader("svix-id")
	svixTimestamp := c.GetHeader("svix-timestamp")
	svixSignature := c.GetHeader("svix-signature")
	if svixID == "" || svixTimestamp == "" || svixSignature == "" {
		log.Println("[Webhook] ❌ 缺少 svix 签名头")
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 svix 签名头"})
		return
	}

	// 3. 读取原始请求体（签名覆盖的是原始字节）
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("[Webhook] ❌ 读取请求体失败: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无法读取请求体"})
		return
	}

	// 4. 验证 Webhook 签名（使用 Svix SDK）
	wh, err := svix.NewWebhook(wc.webhookSecret)
	if err != nil {
		log.Printf("[Webhook] ❌ 初始化 Webhook 验证器失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook 配置错误"})
		return
	}

	headers := http.Header{}
	headers.Set("svix-id", svixID)
	headers.Set("svix-timestamp", svixTimestamp)
	headers.Set("svix-signature", svixSignature)

	if err := wh.Verify(body, headers); err != nil {
		log.Printf("[Webhook] ❌ 签名验证失败: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "签名验证失败"})
		return
	}

	// 5. 解析事件
	var payload ClerkWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("[Webhook] ❌ 解析 Webhook 失败: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 JSON 格式"})
		return
	}

	log.Printf("[Webhook] 📥 收到事件: %s", payload.Type)

	// 6. 根据事件类型处理
	switch payload.Type {
	case "user.created":
		wc.handleUserCreated(c, payload.Data)
	case "user.updated":
		wc.handleUserUpdated(c, payload.Data)
	case "user.deleted":
		wc.handleUserDeleted(c, payload.Data)
	default:
		// 未知事件类型确认后丢弃，避免触发投递方重试
		log.Printf("[Webhook] ℹ️ 忽略事件: %s", payload.Type)
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

// handleUserCreated 处理用户创建事件
func (wc *WebhookController) handleUserCreated(c *gin.Context, data json.RawMessage) {
	var userData ClerkUserData
	if err := json.Unmarshal(data, &userData); err != nil {
		log.Printf("[Webhook] ❌ 解析用户数据失败: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户数据"})
		return
	}
	if userData.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 subject id"})
		return
	}

	// 提取邮箱（取第一个）
	email := ""
	if len(userData.EmailAddresses) > 0 {
		email = userData.EmailAddresses[0].EmailAddress
	}

	user := &entity.User{
		ClerkID:       userData.ID,
		Email:         email,
		Username:      userData.Username,
		FirstName:     userData.FirstName,
		LastName:      userData.LastName,
		Photo:         userData.ImageURL,
		CreditBalance: entity.DefaultCreditBalance,
	}

	created, err := wc.userUC.HandleUserCreated(c.Request.Context(), user)
	if err != nil {
		log.Printf("[Webhook] ❌ 用户创建失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "user": created})
}

// handleUserUpdated 处理用户更新事件
// 只更新档案字段，clerk_id 和 email 不在此路径修改
func (wc *WebhookController) handleUserUpdated(c *gin.Context, data json.RawMessage) {
	var userData ClerkUserData
	if err := json.Unmarshal(data, &userData); err != nil {
		log.Printf("[Webhook] ❌ 解析用户数据失败: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户数据"})
		return
	}
	if userData.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 subject id"})
		return
	}

	fields := map[string]interface{}{
		"username":   userData.Username,
		"first_name": userData.FirstName,
		"last_name":  userData.LastName,
		"photo":      userData.ImageURL,
	}

	updated, err := wc.userUC.HandleUserUpdated(userData.ID, fields)
	if errors.Is(err, domainErrors.ErrUserNotFound) {
		// 本地还没有这条记录（created 事件乱序/丢失）
		// 确认事件以停止重试，记录将在下次认证读取时自愈
		log.Printf("[Webhook] ℹ️ user.updated 无本地记录: %s，等待自愈", userData.ID)
		c.JSON(http.StatusOK, gin.H{"message": "OK"})
		return
	}
	if err != nil {
		log.Printf("[Webhook] ❌ 用户更新失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "用户更新失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "user": updated})
}

// handleUserDeleted 处理用户删除事件（硬删除，重投递幂等）
func (wc *WebhookController) handleUserDeleted(c *gin.Context, data json.RawMessage) {
	var userData struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &userData); err != nil {
		log.Printf("[Webhook] ❌ 解析删除事件数据失败: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户数据"})
		return
	}
	if userData.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 subject id"})
		return
	}

	deleted, err := wc.userUC.HandleUserDeleted(c.Request.Context(), userData.ID)
	if errors.Is(err, domainErrors.ErrUserNotFound) {
		// 重投递：记录已删除，确认即可
		log.Printf("[Webhook] ℹ️ user.deleted 重投递: %s 已不存在", userData.ID)
		c.JSON(http.StatusOK, gin.H{"message": "OK"})
		return
	}
	if err != nil {
		log.Printf("[Webhook] ❌ 用户删除失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "用户删除失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "user": deleted})
}
