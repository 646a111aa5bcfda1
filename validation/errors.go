package validation

// Kind 校验错误类型
type Kind string

const (
	// KindStaticType 类型/取值范围不合法
	KindStaticType Kind = "static_type"
	// KindRequiredMissing 生效中的必填字段为空
	KindRequiredMissing Kind = "required_field_missing"
	// KindCrossField 跨字段约束不满足
	KindCrossField Kind = "cross_field_invariant"
	// KindUnknownFamily 出现了不属于当前模型族的参数
	KindUnknownFamily Kind = "unknown_family_field"
)

// FormLevel 表单级错误的字段名（不挂在任何单个输入上）
const FormLevel = ""

// FieldError 单条校验错误，Field 为空表示表单级
type FieldError struct {
	Field  string `json:"field"`
	Kind   Kind   `json:"kind"`
	Reason string `json:"reason"`
}

func staticErr(field, reason string) FieldError {
	return FieldError{Field: field, Kind: KindStaticType, Reason: reason}
}

func requiredErr(field, reason string) FieldError {
	return FieldError{Field: field, Kind: KindRequiredMissing, Reason: reason}
}

func crossErr(field, reason string) FieldError {
	return FieldError{Field: field, Kind: KindCrossField, Reason: reason}
}

func familyErr(field, reason string) FieldError {
	return FieldError{Field: field, Kind: KindUnknownFamily, Reason: reason}
}
