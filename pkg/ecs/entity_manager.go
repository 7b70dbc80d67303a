package ecs

import "reflect"

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 实体按创建顺序保存，所有查询结果都遵循该顺序，
// 渲染和更新系统依赖它作为绘制/更新顺序。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 实体创建顺序
	order []EntityID
	// 待删除的实体ID列表（去重，标记后不可撤销）
	entitiesToDestroy []EntityID
	marked            map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		order:             make([]EntityID, 0),
		entitiesToDestroy: make([]EntityID, 0),
		marked:            make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	em.order = append(em.order, id)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
// 重复标记同一实体只记录一次
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.components[id]; !exists {
		return
	}
	if _, already := em.marked[id]; already {
		return
	}
	em.marked[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsMarkedForDestroy 检查实体是否已被标记删除
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, marked := em.marked[id]
	return marked
}

// MarkedEntities 返回当前所有标记删除的实体（按标记顺序）
func (em *EntityManager) MarkedEntities() []EntityID {
	result := make([]EntityID, len(em.entitiesToDestroy))
	copy(result, em.entitiesToDestroy)
	return result
}

// Exists 检查实体是否仍然存在（标记删除但尚未清理的实体仍然存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// HasComponentType 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponentType(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 返回本次清理的实体数量
func (em *EntityManager) RemoveMarkedEntities() int {
	if len(em.entitiesToDestroy) == 0 {
		return 0
	}

	removed := 0
	for _, id := range em.entitiesToDestroy {
		if _, exists := em.components[id]; exists {
			delete(em.components, id)
			removed++
		}
		delete(em.marked, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片

	// 压缩创建顺序，保留存活实体的相对顺序
	kept := em.order[:0]
	for _, id := range em.order {
		if _, exists := em.components[id]; exists {
			kept = append(kept, id)
		}
	}
	em.order = kept

	return removed
}

// Count 返回当前存活实体数量（含已标记但未清理的实体）
func (em *EntityManager) Count() int {
	return len(em.order)
}

// getEntitiesWithTypes 按创建顺序查询拥有全部指定组件类型的实体
func (em *EntityManager) getEntitiesWithTypes(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.order {
		compMap := em.components[id]
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

// GetComponent 获取实体的特定类型组件（泛型版本）
//
// 用法：
//
//	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeOf(zero)]
	if !found {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 检查实体是否拥有特定类型组件（泛型版本）
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	var zero T
	return em.HasComponentType(id, reflect.TypeOf(zero))
}

// GetEntitiesWith1 查询拥有一种组件的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	var t1 T1
	return em.getEntitiesWithTypes(reflect.TypeOf(t1))
}

// GetEntitiesWith2 查询同时拥有两种组件的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var t1 T1
	var t2 T2
	return em.getEntitiesWithTypes(reflect.TypeOf(t1), reflect.TypeOf(t2))
}

// GetEntitiesWith3 查询同时拥有三种组件的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	var t1 T1
	var t2 T2
	var t3 T3
	return em.getEntitiesWithTypes(reflect.TypeOf(t1), reflect.TypeOf(t2), reflect.TypeOf(t3))
}
