package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	pos, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	if _, found := GetComponent[*testVelocityComponent](em, id); found {
		t.Error("Velocity component should not be found")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}

	// 清理后实体消失
	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Removed entity should no longer be reported as marked")
	}
}

func TestDestroyEntityTwiceRemovesOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if got := len(em.MarkedEntities()); got != 1 {
		t.Errorf("Expected entity to be marked once, got %d", got)
	}
	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	// 第二次清理不应再删除任何实体
	if removed := em.RemoveMarkedEntities(); removed != 0 {
		t.Errorf("Second cleanup should remove nothing, got %d", removed)
	}
}

func TestDestroyUnknownEntityIgnored(t *testing.T) {
	em := NewEntityManager()
	em.DestroyEntity(42)
	if len(em.MarkedEntities()) != 0 {
		t.Error("Unknown entity should not be marked")
	}
}

func TestQueryPreservesCreationOrder(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 5)
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		ids = append(ids, id)
	}

	// 删除中间的实体后，剩余实体仍保持创建顺序
	em.DestroyEntity(ids[1])
	em.DestroyEntity(ids[3])
	em.RemoveMarkedEntities()

	got := GetEntitiesWith1[*testPositionComponent](em)
	want := []EntityID{ids[0], ids[2], ids[4]}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected entity %d, got %d", i, want[i], got[i])
		}
	}

	// 新实体排在最后
	late := em.CreateEntity()
	em.AddComponent(late, &testPositionComponent{})
	got = GetEntitiesWith1[*testPositionComponent](em)
	if got[len(got)-1] != late {
		t.Errorf("Newest entity should be last, got %v", got)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	// 查询拥有 Position+Velocity 的实体
	entities := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(entities) != 1 || entities[0] != id1 {
		t.Errorf("Query should return only id1, got %v", entities)
	}

	// 查询只拥有 Position 的实体
	posEntities := GetEntitiesWith1[*testPositionComponent](em)
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.RemoveComponent(id, reflect.TypeOf(&testPositionComponent{}))

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Component should be removed")
	}
	if !em.Exists(id) {
		t.Error("Entity should still exist after removing a component")
	}
}
