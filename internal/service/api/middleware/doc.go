// Package middleware ID 발급 API 서버의 Echo 미들웨어를 제공합니다.
//
// NewHTTPServer가 PanicRecovery, HTTPLogger, RateLimiting을 이 순서로 등록하며,
// Logger는 Echo 내부 로그를 애플리케이션 로거(logrus)로 보내는 어댑터입니다.
package middleware
