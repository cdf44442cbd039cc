package testutils

import (
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
)

// Fixture defaults
const (
	TestNickname  = "책벌레"
	TestGuildName = "새벽 독서단"
	TestBossName  = "망각의 용"
	TestISBN      = "9788937460449"
)

// CreateTestUser creates a reader with a few points and mixed stats
func CreateTestUser(nickname string) *entities.User {
	return &entities.User{
		UserID:   1,
		Email:    "reader@example.com",
		Nickname: nickname,
		Point:    250,
		Stats: entities.Stats{
			Logic:   40,
			Emotion: 70,
			Action:  20,
		},
	}
}

// CreateTestGuild creates a public guild led by leader with no raid running
func CreateTestGuild(id int64, leader string) *entities.Guild {
	return &entities.Guild{
		ID:                 id,
		Name:               TestGuildName,
		Description:        "매일 아침 30분 함께 읽어요",
		MaxMembers:         entities.DefaultGuildCapacity,
		CurrentMemberCount: 3,
		LeaderName:         leader,
	}
}

// CreateTestGuildWithRaid creates a guild whose current raid targets bossID
func CreateTestGuildWithRaid(id int64, leader string, bossID int64) *entities.Guild {
	g := CreateTestGuild(id, leader)
	g.CurrentBossID = &bossID
	return g
}

// CreateTestBoss creates an active boss at currentHP out of 1000
func CreateTestBoss(id int64, currentHP int64) *entities.Boss {
	return &entities.Boss{
		ID:          id,
		Name:        TestBossName,
		Description: "읽지 않은 책을 먹고 자랍니다",
		Level:       3,
		MaxHP:       1000,
		CurrentHP:   currentHP,
		ImageURL:    "https://example.com/boss.png",
		IsActive:    currentHP > 0,
	}
}

// CreateTestQuiz creates a quiz with one question of each type
func CreateTestQuiz(quizID int64) *entities.Quiz {
	return &entities.Quiz{
		QuizID: quizID,
		Questions: []entities.Question{
			{QuestionNo: 1, QuestionID: 11, Question: "주인공의 이름은?", Type: entities.QuestionMultiple, Options: []string{"싱클레어", "데미안", "크로머", "베아트리체"}},
			{QuestionNo: 2, QuestionID: 12, Question: "데미안은 싱클레어의 친구이다.", Type: entities.QuestionOX, Options: []string{}},
			{QuestionNo: 3, QuestionID: 13, Question: "새가 깨고 나오는 것은?", Type: entities.QuestionShort, Options: []string{}},
		},
	}
}
