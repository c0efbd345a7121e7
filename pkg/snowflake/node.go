package snowflake

import (
	"crypto/rand"
	"io"
	"math/big"
)

// NodeIDSource 생성기에 할당할 노드 ID를 결정하는 함수입니다.
//
// 여러 레플리카가 동시에 동작하는 운영 환경에서는 StatefulSet 순번(ordinal)처럼
// 외부에서 중복 없이 조정된 값을 반환하는 소스를 사용해야 합니다.
type NodeIDSource func() (int64, error)

// FixedNodeID 항상 주어진 노드 ID를 반환하는 NodeIDSource를 생성합니다.
func FixedNodeID(nodeID int64) NodeIDSource {
	return func() (int64, error) {
		return nodeID, nil
	}
}

// RandomNodeID 암호학적 난수 생성기(crypto/rand)로 [0, MaxNodeID] 범위의 노드 ID를 균등하게 추출합니다.
//
// 주의: 독립적으로 기동된 인스턴스들이 같은 값을 뽑을 확률이 0이 아니므로,
// 단일 인스턴스 또는 테스트 환경에서만 사용하는 것을 권장합니다.
func RandomNodeID() (int64, error) {
	return RandomNodeIDFrom(rand.Reader)()
}

// RandomNodeIDFrom 지정된 난수 스트림에서 노드 ID를 추출하는 NodeIDSource를 생성합니다.
func RandomNodeIDFrom(r io.Reader) NodeIDSource {
	return func() (int64, error) {
		n, err := rand.Int(r, big.NewInt(MaxNodeID+1))
		if err != nil {
			return 0, err
		}
		return n.Int64(), nil
	}
}
