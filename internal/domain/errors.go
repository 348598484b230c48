package domain

import "errors"

var (
	// ErrQuantityTooLow 购物车数量必须 >= 1，数量为 0 不等于删除
	ErrQuantityTooLow = errors.New("quantity must be at least 1")

	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredential 登录失败统一返回一个错误，
	// 不区分“账号不存在”和“密码错误”，避免暴露注册情况
	ErrInvalidCredential = errors.New("invalid credentials")

	ErrNotFound = errors.New("not found")

	// ErrOrderNotCancellable 订单只有 Pending 状态可以取消
	ErrOrderNotCancellable = errors.New("order cannot be cancelled")

	ErrInvalidOrderStatus = errors.New("invalid order status")
)
