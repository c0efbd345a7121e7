package snowflake

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ID 스노우플레이크 방식으로 발급된 64비트 식별자입니다.
//
// 소비자 입장에서는 불투명한 기본 키 값으로 취급하면 되지만,
// 필요한 경우 Timestamp/NodeID/Sequence로 각 필드를 분해할 수 있습니다.
type ID uint64

// Components ID를 구성하는 각 필드의 값입니다.
type Components struct {
	Timestamp int64 `json:"timestamp"` // Epoch 이후 경과 밀리초
	NodeID    int64 `json:"node_id"`
	Sequence  int64 `json:"sequence"`
}

// Compose 각 필드 값을 비트 배치에 맞게 조합하여 ID를 만듭니다.
//
// 필드 값이 허용 범위를 벗어나면 *ConfigurationError를 반환합니다.
func Compose(timestamp, nodeID, sequence int64) (ID, error) {
	if timestamp < 0 || timestamp > MaxTimestamp {
		return 0, &ConfigurationError{Field: "timestamp", Value: timestamp, Min: 0, Max: MaxTimestamp}
	}
	if nodeID < 0 || nodeID > MaxNodeID {
		return 0, &ConfigurationError{Field: "node_id", Value: nodeID, Min: 0, Max: MaxNodeID}
	}
	if sequence < 0 || sequence > MaxSequence {
		return 0, &ConfigurationError{Field: "sequence", Value: sequence, Min: 0, Max: MaxSequence}
	}

	return compose(timestamp, nodeID, sequence), nil
}

func compose(timestamp, nodeID, sequence int64) ID {
	return ID(uint64(timestamp)<<timestampShift | uint64(nodeID)<<nodeIDShift | uint64(sequence))
}

// Timestamp Epoch 이후 경과한 밀리초(타임스탬프 필드)를 반환합니다.
func (id ID) Timestamp() int64 {
	return int64(id>>timestampShift) & MaxTimestamp
}

// NodeID ID를 발급한 생성기의 노드 ID를 반환합니다.
func (id ID) NodeID() int64 {
	return int64(id>>nodeIDShift) & MaxNodeID
}

// Sequence 동일 밀리초 내 발급 순번을 반환합니다.
func (id ID) Sequence() int64 {
	return int64(id) & MaxSequence
}

// Components 세 필드를 한 번에 분해하여 반환합니다.
func (id ID) Components() Components {
	return Components{
		Timestamp: id.Timestamp(),
		NodeID:    id.NodeID(),
		Sequence:  id.Sequence(),
	}
}

// UnixMilli ID가 발급된 시각을 Unix 밀리초로 반환합니다.
func (id ID) UnixMilli() int64 {
	return id.Timestamp() + Epoch
}

// Time ID가 발급된 시각을 반환합니다.
func (id ID) Time() time.Time {
	return time.UnixMilli(id.UnixMilli())
}

// Int64 ID를 부호 있는 정수로 반환합니다. 최상위 비트가 항상 0이므로 손실이 없습니다.
func (id ID) Int64() int64 {
	return int64(id)
}

// String 10진수 문자열을 반환합니다.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Base62 11자리 고정 길이의 Base62 문자열을 반환합니다.
//
// 고정 길이로 패딩하므로 문자열의 사전순 정렬이 ID의 숫자 크기 순서와 일치합니다.
func (id ID) Base62() string {
	return string(appendBase62FixedLength(make([]byte, 0, base62IDLength), uint64(id), base62IDLength))
}

// MarshalJSON ID를 10진수 JSON 문자열로 직렬화합니다.
// JavaScript 등 53비트 정수까지만 안전하게 다루는 클라이언트에서 값이 손상되지 않도록 문자열을 사용합니다.
func (id ID) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 22)
	b = append(b, '"')
	b = strconv.AppendUint(b, uint64(id), 10)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON 10진수 JSON 문자열 또는 숫자로부터 ID를 복원합니다.
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	s := string(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		s = string(data[1 : len(data)-1])
	}

	parsed, err := ParseString(s)
	if err != nil {
		return err
	}
	*id = parsed

	return nil
}

// ParseString 10진수 문자열을 ID로 해석합니다.
func ParseString(s string) (ID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (%v)", ErrInvalidID, s, err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q (부호 비트가 설정되어 있습니다)", ErrInvalidID, s)
	}
	return ID(n), nil
}

// ParseBase62 Base62 문자열을 ID로 해석합니다. 앞쪽의 '0' 패딩은 있어도 없어도 됩니다.
func ParseBase62(s string) (ID, error) {
	n, err := parseBase62(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (%v)", ErrInvalidID, s, err)
	}
	return ID(n), nil
}
