package service

// 원문 응답 메시지는 한국어를 사용한다.
const (
	msgMissingFields     = "모든 필드를 입력해주세요."
	msgInvalidCategory   = "유효하지 않은 카테고리입니다."
	msgTitleTooLong      = "제목은 127자 이내로 입력해주세요."
	msgContentTooLong    = "내용은 10000자 이내로 입력해주세요."
	msgShortcutTooLong   = "바로가기 버튼 이름은 127자 이내로 입력해주세요."
	msgNothingToUpdate   = "수정할 값을 입력해주세요."
	msgLogoRequired      = "파일을 업로드 해주세요."
	msgThumbnailRequired = "표지 이미지를 업로드 해주세요."
	msgImagesRequired    = "본문 이미지를 업로드 해주세요."
	msgPortfolioNotFound = "포트폴리오를 찾을 수 없습니다."
	msgNewsNotFound      = "뉴스를 찾을 수 없습니다."
	msgProgramNotFound   = "프로그램을 찾을 수 없습니다."
)

// ValidationError 필드 검증 실패 (HTTP 400)
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func newValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// UploadError 업로드 제약 위반 (HTTP 400, 필드별 메시지)
type UploadError struct {
	Msg string
}

func (e *UploadError) Error() string { return e.Msg }

func NewUploadError(msg string) error {
	return &UploadError{Msg: msg}
}

// NotFoundError 레코드 없음 (HTTP 404)
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func newNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}
