package generator

const notesPrompt = `Based on the following lecture content, create well-organized, concise study notes with clear sections and bullet points. Format should be:

## Key Topics
- Topic 1
- Topic 2

## Main Concepts
- Concept 1: Brief explanation
- Concept 2: Brief explanation

## Important Points to Remember
- Point 1
- Point 2

Lecture Content:
%s

Study Notes:`

const summaryPrompt = `Provide a concise summary of the following lecture content in approximately 150 words. Keep the original terminology.

Lecture Content:
%s

Summary:`

const studyGuidePrompt = `Create a comprehensive study guide for exam preparation based on this lecture content.
Include:
1. Overview
2. Key Concepts (with explanations)
3. Important Formulas/Rules
4. Common Mistakes to Avoid
5. Practice Topics

Lecture Content:
%s

Study Guide:`

const examPrompt = `Generate 5 multiple choice questions based on the lecture content.
Each question should have 4 options (A, B, C, D) and indicate the correct answer.
Follow these guidelines:
- ONE and ONLY ONE correct answer
- Plausible but incorrect distractors (wrong answers)
- Avoid "all of the above" and "none of the above"
- Clear, concise question stem
- Test understanding, not just memorization

Format each MCQ as:
Q: [question text]
A) [option A]
B) [option B]
C) [option C]
D) [option D]
Answer: [correct letter]

Then generate 3 True/False questions. Some statements should be true, others false. Format each as:
T/F: [statement]
Answer: [True/False]

Then generate 2 short answer questions testing critical thinking. Format each as:
SA: [question text]

Lecture Content:
%s

Questions:`

// promptFor returns the prompt template and sampling temperature for a kind.
func promptFor(kind DocumentKind) (template string, temperature float64) {
	switch kind {
	case KindSummary:
		return summaryPrompt, 0.3
	case KindStudyGuide:
		return studyGuidePrompt, 0.3
	case KindExam:
		return examPrompt, 0.5
	default:
		return notesPrompt, 0.3
	}
}
