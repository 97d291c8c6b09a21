package persistence

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	. "github.com/fulldump/biff"
	"github.com/go-json-experiment/json"
	"golang.org/x/sync/errgroup"
)

func TestCreate_AssignsId(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		created, err := p.Create("", &Dummy{Key: "A", Content: "hello"})

		AssertNil(err)
		AssertEqual(len(created.Id), 32)
		found, ok := p.GetOneById("", created.Id)
		AssertTrue(ok)
		AssertEqual(found, &Dummy{Id: created.Id, Key: "A", Content: "hello"})
		AssertEqual(s.saves, 1)
	})
}

func TestCreate_KeepsId(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		created, _ := p.Create("", &Dummy{Id: "my-id"})

		AssertEqual(created.Id, "my-id")
	})
}

type Counter struct {
	Id    int `json:"id"`
	Value int `json:"value"`
}

func (c *Counter) GetId() int {
	return c.Id
}

func TestCreate_NonStringKeys(t *testing.T) {

	p := NewIdentifiableMemoryPersistence[*Counter, int](nil, nil)

	p.Create("", &Counter{Id: 0, Value: 1})
	p.Create("", &Counter{Id: 7, Value: 2})

	found, ok := p.GetOneById("", 0)
	AssertTrue(ok)
	AssertEqual(found.Value, 1)

	updated, ok, err := p.UpdatePartially("", 7, map[string]any{"value": 3})
	AssertNil(err)
	AssertTrue(ok)
	AssertEqual(updated, &Counter{Id: 7, Value: 3})
}

func TestCreate_DuplicatedKeys(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		p.Create("", &Dummy{Id: "1", Key: "first"})
		p.Create("", &Dummy{Id: "1", Key: "second"})

		found, _ := p.GetOneById("", "1")
		AssertEqual(found.Key, "first")

		p.DeleteById("", "1")
		found, _ = p.GetOneById("", "1")
		AssertEqual(found.Key, "second")
	})
}

func TestGetListByIds(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		p.Create("", &Dummy{Id: "1"})
		p.Create("", &Dummy{Id: "2"})
		p.Create("", &Dummy{Id: "3"})

		list := p.GetListByIds("", []string{"3", "missing", "1"})

		AssertEqual(list, []*Dummy{{Id: "3"}, {Id: "1"}})
	})
}

func TestUpdate(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		p.Create("", &Dummy{Id: "1", Key: "A"})
		p.Create("", &Dummy{Id: "2", Key: "B"})

		updated, found, err := p.Update("", &Dummy{Id: "1", Key: "AA"})

		AssertNil(err)
		AssertTrue(found)
		AssertEqual(updated, &Dummy{Id: "1", Key: "AA"})
		AssertEqual(p.GetListByFilter("", nil, nil), []*Dummy{{Id: "1", Key: "AA"}, {Id: "2", Key: "B"}})
		AssertEqual(s.saves, 3)
	})
}

func TestUpdate_Miss(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		p.Create("", &Dummy{Id: "1", Key: "A"})
		savesBefore := s.saves

		updated, found, err := p.Update("", &Dummy{Id: "404", Key: "B"})

		AssertNil(err)
		AssertFalse(found)
		AssertNil(updated)
		AssertEqual(s.saves, savesBefore)
		AssertEqual(p.GetCountByFilter("", nil), 1)
	})
}

func TestSet(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		p.Set("", &Dummy{Id: "1", Key: "A"})
		p.Set("", &Dummy{Id: "1", Key: "B"})

		AssertEqual(p.GetListByFilter("", nil, nil), []*Dummy{{Id: "1", Key: "B"}})
		AssertEqual(s.saves, 2)

		created, err := p.Set("", &Dummy{Key: "C"})
		AssertNil(err)
		AssertEqual(len(created.Id), 32)
		AssertEqual(p.GetCountByFilter("", nil), 2)
	})
}

func TestDeleteById(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		p.Create("", &Dummy{Id: "1", Key: "A"})
		p.Create("", &Dummy{Id: "2", Key: "B"})
		p.Create("", &Dummy{Id: "3", Key: "C"})

		deleted, found, err := p.DeleteById("", "2")

		AssertNil(err)
		AssertTrue(found)
		AssertEqual(deleted, &Dummy{Id: "2", Key: "B"})
		_, found = p.GetOneById("", "2")
		AssertFalse(found)
		AssertEqual(p.GetListByFilter("", nil, nil), []*Dummy{{Id: "1", Key: "A"}, {Id: "3", Key: "C"}})

		t.Run("miss", func(t *testing.T) {
			savesBefore := s.saves
			_, found, err := p.DeleteById("", "2")
			AssertNil(err)
			AssertFalse(found)
			AssertEqual(s.saves, savesBefore)
		})
	})
}

func TestDeleteByIds(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		for _, id := range []string{"1", "2", "3", "4"} {
			p.Create("", &Dummy{Id: id})
		}
		savesBefore := s.saves

		err := p.DeleteByIds("", []string{"1", "3", "404"})

		AssertNil(err)
		AssertEqual(s.saves, savesBefore+1)
		AssertEqual(p.GetListByFilter("", nil, nil), []*Dummy{{Id: "2"}, {Id: "4"}})

		err = p.DeleteByIds("", []string{"404"})
		AssertNil(err)
		AssertEqual(s.saves, savesBefore+1)
	})
}

func TestUpdatePartially(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		p.Create("", &Dummy{Id: "1", Key: "A", Content: "one"})
		p.Create("", &Dummy{Id: "2", Key: "B", Content: "old"})

		updated, found, err := p.UpdatePartially("", "2", map[string]any{"content": "X"})

		AssertNil(err)
		AssertTrue(found)
		AssertEqual(updated, &Dummy{Id: "2", Key: "B", Content: "X"})
		stored, _ := p.GetOneById("", "2")
		AssertEqual(stored, &Dummy{Id: "2", Key: "B", Content: "X"})
		AssertEqual(s.items[1], &Dummy{Id: "2", Key: "B", Content: "X"})

		t.Run("miss", func(t *testing.T) {
			savesBefore := s.saves
			_, found, err := p.UpdatePartially("", "404", map[string]any{"content": "X"})
			AssertNil(err)
			AssertFalse(found)
			AssertEqual(s.saves, savesBefore)
		})
	})
}

type Tagged struct {
	Id   string
	Tags map[string]string
}

func (t *Tagged) GetId() string {
	return t.Id
}

func (t *Tagged) ApplyPatch(field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("tags must be strings")
	}
	t.Tags[field] = s
	return nil
}

func TestUpdatePartially_Patcher(t *testing.T) {

	p := NewIdentifiableMemoryPersistence[*Tagged, string](nil, nil)
	p.Create("", &Tagged{Id: "1", Tags: map[string]string{"color": "red"}})

	updated, found, err := p.UpdatePartially("", "1", map[string]any{"size": "xl"})
	AssertNil(err)
	AssertTrue(found)
	AssertEqual(updated.Tags, map[string]string{"color": "red", "size": "xl"})

	_, found, err = p.UpdatePartially("", "1", map[string]any{"size": 3})
	AssertTrue(found)
	AssertTrue(errors.Is(err, ErrInvalidPatch))
}

func TestUpdatePartially_PatcherFailureKeepsRecord(t *testing.T) {

	p := NewIdentifiableMemoryPersistence[*Tagged, string](nil, nil)
	p.Create("", &Tagged{Id: "1", Tags: map[string]string{"color": "red"}})
	before, _ := p.GetOneById("", "1")

	// "a" is applied before "b" fails
	_, found, err := p.UpdatePartially("", "1", map[string]any{"a": "x", "b": 3})

	AssertTrue(found)
	AssertTrue(errors.Is(err, ErrInvalidPatch))
	stored, _ := p.GetOneById("", "1")
	AssertEqual(stored.Tags, map[string]string{"color": "red"})
	AssertTrue(stored == before)
}

func TestUpdatePartially_FailureKeepsRecord(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		p.Create("", &Dummy{Id: "2", Key: "B", Content: "old"})
		saves := s.Saves()

		_, found, err := p.UpdatePartially("", "2", map[string]any{"key": "Z", "content": 5})

		AssertTrue(found)
		AssertTrue(errors.Is(err, ErrInvalidPatch))
		stored, _ := p.GetOneById("", "2")
		AssertEqual(stored, &Dummy{Id: "2", Key: "B", Content: "old"})
		AssertEqual(s.Saves(), saves)
		AssertEqual(s.items[0], &Dummy{Id: "2", Key: "B", Content: "old"})
	})
}

func TestUpdatePartially_KeepsEarlierReads(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		p.Create("", &Dummy{Id: "2", Key: "B", Content: "old"})
		read, _ := p.GetOneById("", "2")
		page := p.GetPageByFilter("", nil, nil, nil)

		updated, _, err := p.UpdatePartially("", "2", map[string]any{"content": "X"})

		AssertNil(err)
		AssertEqual(read.Content, "old")
		AssertEqual(page.Data[0].Content, "old")
		AssertEqual(updated.Content, "X")
		AssertFalse(read == updated)
	})
}

func TestUpdatePartially_ConcurrentReaders(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		p.Create("", &Dummy{Id: "2", Key: "B", Content: "old"})

		g := &errgroup.Group{}
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				d, _ := p.GetOneById("", "2")
				if _, err := json.Marshal(d); err != nil {
					return err
				}
			}
			return nil
		})
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				if _, _, err := p.UpdatePartially("", "2", map[string]any{"content": fmt.Sprint(i)}); err != nil {
					return err
				}
			}
			return nil
		})

		AssertNil(g.Wait())
		stored, _ := p.GetOneById("", "2")
		AssertEqual(stored.Content, "199")
	})
}

func TestIdentifiable_Concurrency(t *testing.T) {
	Environment(func(p *IdentifiableMemoryPersistence[*Dummy, string], s *memoryStorage) {

		workers := 16
		n := 50

		g := &errgroup.Group{}
		for w := 0; w < workers; w++ {
			g.Go(func() error {
				for i := 0; i < n; i++ {
					created, err := p.Create("", &Dummy{Key: "A"})
					if err != nil {
						return err
					}
					p.GetPageByFilter("", byKey("A"), nil, byKeyDesc)
					if _, _, err := p.UpdatePartially("", created.Id, map[string]any{"key": "B"}); err != nil {
						return err
					}
				}
				return nil
			})
		}

		AssertNil(g.Wait())
		AssertEqual(p.GetCountByFilter("", byKey("B")), workers*n)
		AssertEqual(s.Saves(), 2*workers*n)
	})
}

func TestNextID_Unique(t *testing.T) {

	mutex := &sync.Mutex{}
	ids := map[string]struct{}{}

	wg := &sync.WaitGroup{}
	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := NextID()
			mutex.Lock()
			ids[id] = struct{}{}
			mutex.Unlock()
		}()
	}
	wg.Wait()

	AssertEqual(len(ids), 1000)
}
