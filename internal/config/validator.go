package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/snowflake-server/internal/pkg/errors"
	"github.com/darkkaiser/snowflake-server/pkg/cronx"
	"github.com/go-playground/validator/v10"
)

// newValidator 커스텀 규칙이 등록된 Validator 인스턴스를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명(NodeID) 대신 설정 파일의 키 이름(node_id)이 나타나도록 합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cron_spec", validateCronSpec); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cron_spec' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateCronSpec 문자열 필드가 cronx.StandardParser로 해석 가능한 표현식인지 검사합니다.
func validateCronSpec(fl validator.FieldLevel) bool {
	return cronx.Validate(fl.Field().String()) == nil
}

// checkStruct 구조체의 유효성을 검사하고, 첫 번째 위반 항목을 사용자 친화적인 메시지로 반환합니다.
func checkStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증에 실패했습니다")
	}

	return apperrors.New(apperrors.InvalidInput, describeFieldError(validationErrors[0]))
}

func describeFieldError(fe validator.FieldError) string {
	// Namespace: "AppConfig.generator.node_id" -> "generator.node_id"
	key := fe.Namespace()
	if _, after, found := strings.Cut(key, "."); found {
		key = after
	}

	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("설정 항목 '%s'의 값(%v)은 %s 이상이어야 합니다", key, fe.Value(), fe.Param())
	case "max":
		return fmt.Sprintf("설정 항목 '%s'의 값(%v)은 %s 이하여야 합니다", key, fe.Value(), fe.Param())
	case "required", "required_if":
		return fmt.Sprintf("설정 항목 '%s'는 필수입니다", key)
	case "cron_spec":
		return fmt.Sprintf("설정 항목 '%s'의 Cron 표현식이 올바르지 않습니다: '%v' (예: @every 1m, 0 */5 * * * *)", key, fe.Value())
	default:
		return fmt.Sprintf("설정 항목 '%s'의 값이 올바르지 않습니다 (조건: %s)", key, fe.Tag())
	}
}
