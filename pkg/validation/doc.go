/*
Package validation 설정 파일에 기록된 외부 입력값의 형식을 검사합니다.

  - CORS Origin (Scheme://Host[:Port])
  - 스크래핑 대상 사이트 URL (http/https 절대 경로)

모든 함수는 유효하지 않은 입력에 대해 원인을 설명하는 error를 반환하며, 상태를 갖지 않습니다.
*/
package validation
