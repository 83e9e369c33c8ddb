// Package prompt assembles the instruction strings sent to the generation
// service. Everything here is pure string concatenation: identical inputs
// always yield byte-identical output, and no function can fail.
//
// Subject and grade guidance blocks are selected by exact match against the
// fixed enumerations below. Values outside the enumerations get no guidance
// block; the prompt degrades to the shared closing requirements.
package prompt

import (
	"fmt"
	"strings"
)

// Reference is one user-supplied curriculum document injected as grounding
// context. Excerpt holds the document's extracted text; only the first 500
// characters are cited.
type Reference struct {
	Name    string `json:"name"`
	Excerpt string `json:"context"`
}

const excerptLimit = 500

// Subjects recognized by the guidance blocks.
const (
	SubjectMathematics = "mathematics"
	SubjectScience     = "science"
	SubjectEnglish     = "english"
	SubjectHistory     = "history"
	SubjectArt         = "art"
	SubjectMusic       = "music"
	SubjectPhysicalEd  = "physical_education"
)

// LessonPlan builds the lesson-plan generation prompt. With no reference
// material the topic passes through untouched.
func LessonPlan(topic, subject, grade string, refs []Reference) string {
	if len(refs) == 0 {
		return topic
	}

	var b strings.Builder
	b.WriteString(referencePreamble(refs))
	fmt.Fprintf(&b, "Generate a detailed, standards-aligned lesson plan for %s for grade %s on the topic: %s\n\n",
		orDefault(subject, "the subject"), orDefault(grade, "level"), topic)
	b.WriteString(lessonSubjectBlocks[subject])
	b.WriteString(lessonGradeBlocks[gradeBand(grade)])
	b.WriteString(lessonChecklist)
	return b.String()
}

// Assessment builds the assessment generation prompt. With no reference
// material the topic passes through untouched.
func Assessment(topic, subject, grade string, refs []Reference) string {
	if len(refs) == 0 {
		return topic
	}

	var b strings.Builder
	b.WriteString(referencePreamble(refs))
	fmt.Fprintf(&b, "Generate a comprehensive, standards-aligned assessment for %s for grade %s on the topic: %s\n\n",
		orDefault(subject, "the subject"), orDefault(grade, "level"), topic)
	b.WriteString(assessmentSubjectBlocks[subject])
	b.WriteString(assessmentGradeBlocks[gradeBand(grade)])
	b.WriteString(assessmentChecklist)
	return b.String()
}

// ClassroomAudio builds the rubric prompt for classroom recording feedback.
func ClassroomAudio(transcript, subject, grade, language string) string {
	return fmt.Sprintf(`Analyze the following %s class recording transcription for a %s level class and provide detailed feedback on:

1. Conceptual clarity - Were the concepts explained clearly and logically?
2. Engagement - How well did the teacher engage students?
3. Organization - Was the lesson well-structured?
4. Examples - Were helpful examples provided?
5. Areas for improvement - What specific aspects could be improved?

Format your response with clear headings and bullet points where appropriate.
The language of the transcription is %s:

%s`, subject, grade, orDefault(language, "English"), transcript)
}

// Assignment builds the rubric prompt for scanned assignment feedback.
func Assignment(text, subject, grade string) string {
	return fmt.Sprintf(`Analyze the following %s assignment for a %s level student:

1. Content understanding - Does the student demonstrate understanding of key concepts?
2. Application - How well does the student apply knowledge to problems?
3. Organization - Is the work well-structured and clearly presented?
4. Areas of strength - What aspects of the work are particularly strong?
5. Areas for improvement - What specific aspects could be improved?
6. Suggested grade - Provide a suggested grade based on the quality of work.

Format your response with clear headings and bullet points where appropriate.

The extracted text from the assignment image is:
%s`, subject, grade, text)
}

func referencePreamble(refs []Reference) string {
	var b strings.Builder
	b.WriteString("Using the following NCERT reference materials as context:\n")
	for i, ref := range refs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "- %s: %s...", ref.Name, truncate(ref.Excerpt, excerptLimit))
	}
	b.WriteString("\n\n")
	return b.String()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// gradeBand buckets a grade level into the guidance bands. Unmatched values
// return "" which maps to no block.
func gradeBand(grade string) string {
	switch grade {
	case "kindergarten", "1", "2":
		return "early-elementary"
	case "3", "4", "5":
		return "upper-elementary"
	case "6", "7", "8":
		return "middle-school"
	case "9", "10", "11", "12":
		return "high-school"
	case "college":
		return "college"
	default:
		return ""
	}
}
