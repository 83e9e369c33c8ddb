package prompt

// Guidance blocks appended when the subject or grade band is recognized.
// Missing keys resolve to the empty string, which is the intended degradation
// for values outside the enumerations.

var lessonSubjectBlocks = map[string]string{
	SubjectMathematics: `For this mathematics lesson, include:
- Age-appropriate mathematical concepts and vocabulary
- Step-by-step examples and demonstrations
- Opportunities for students to practice calculations and problem-solving
- Visual representations or models of mathematical concepts
- Real-world applications of the mathematical concepts
`,
	SubjectScience: `For this science lesson, include:
- Key scientific vocabulary and concepts
- A hands-on experiment or demonstration if applicable
- Scientific method application
- Safety considerations if relevant
- Connections to real-world phenomena
`,
	SubjectEnglish: `For this English lesson, include:
- Key literacy skills being targeted
- Vocabulary development activities
- Reading comprehension strategies
- Writing components with clear prompts
- Speaking and listening opportunities
`,
	SubjectHistory: `For this history lesson, include:
- Historical context and background information
- Primary and secondary source examination
- Timeline or chronological elements
- Cultural and societal impacts
- Connections to contemporary issues if relevant
`,
	SubjectArt: `For this art lesson, include:
- Key art concepts, techniques, and vocabulary
- Visual examples or demonstrations
- Creative expression opportunities
- Art history connections if relevant
- Materials list with alternatives if possible
`,
	SubjectMusic: `For this music lesson, include:
- Key musical concepts and terminology
- Listening examples if applicable
- Performance or practice components
- Music theory elements appropriate for the grade level
- Cultural or historical context of the music
`,
	SubjectPhysicalEd: `For this physical education lesson, include:
- Clear skills development focus
- Warm-up and cool-down activities
- Safety considerations and modifications
- Equipment needs and alternatives
- Connection to physical fitness concepts
`,
}

var lessonGradeBlocks = map[string]string{
	"early-elementary": `For this early elementary grade level:
- Keep activities hands-on and concrete
- Limit direct instruction to 10-15 minutes
- Include movement and transitions
- Use visual aids and manipulatives
- Focus on foundational skills
`,
	"upper-elementary": `For this upper elementary grade level:
- Balance concrete and abstract concepts
- Include cooperative learning opportunities
- Develop independent work skills
- Incorporate graphic organizers
- Build on prior knowledge from earlier grades
`,
	"middle-school": `For this middle school grade level:
- Support development of abstract thinking
- Include collaborative problem-solving
- Address multiple learning styles
- Connect content to students' lives and interests
- Incorporate critical thinking and analysis
`,
	"high-school": `For this high school grade level:
- Focus on higher-order thinking skills
- Include independent research components
- Develop discipline-specific analytical skills
- Prepare students for college/career readiness
- Encourage student-led inquiry
`,
	"college": `For this college level:
- Design for advanced critical thinking
- Include research-based approaches
- Develop professional and scholarly skills
- Incorporate discussion-based learning
- Connect to career and real-world applications
`,
}

const lessonChecklist = `
The lesson plan should include:
1. Clear learning objectives and outcomes
2. A hook or engaging introduction activity (5-7 minutes)
3. Main instructional content with step-by-step teaching procedures
4. At least 2 interactive student activities
5. Differentiation strategies for various learning styles and abilities
6. Formative assessment methods to check understanding
7. Closure activity
8. Required materials and resources
9. Estimated time for each section
10. Homework or extension activities (if appropriate)

Format the lesson plan with clear headings for each section and use bullet points where appropriate for readability.`

var assessmentSubjectBlocks = map[string]string{
	SubjectMathematics: `For this mathematics assessment, include:
- Computational problems with clear work space
- Word problems applying concepts to real-world scenarios
- Questions testing conceptual understanding, not just procedures
- Visual or spatial reasoning problems
- Questions requiring mathematical justification or explanation
`,
	SubjectScience: `For this science assessment, include:
- Questions on scientific vocabulary and concepts
- Data interpretation from charts, graphs, or tables
- Scenario-based questions applying scientific principles
- Questions about experimental design or the scientific method
- Questions connecting concepts to real-world applications
`,
	SubjectEnglish: `For this English assessment, include:
- Reading comprehension questions with appropriate text excerpts
- Vocabulary assessment in context
- Grammar and mechanics questions
- Writing prompts with clear expectations
- Speaking/listening components if applicable
`,
	SubjectHistory: `For this history assessment, include:
- Questions about key events, people, and concepts
- Primary source analysis questions
- Chronology and causation questions
- Compare/contrast questions exploring different perspectives
- Questions connecting historical events to broader themes
`,
	SubjectArt: `For this art assessment, include:
- Art technique and vocabulary questions
- Art analysis and interpretation components
- Creative production tasks
- Art history connections if relevant
- Self-reflection or critique elements
`,
	SubjectMusic: `For this music assessment, include:
- Music theory and terminology questions
- Listening and analysis components
- Performance evaluation criteria if applicable
- Music history or cultural context questions
- Creative or composition elements if appropriate
`,
	SubjectPhysicalEd: `For this physical education assessment, include:
- Skills performance evaluation criteria
- Knowledge of rules and safety procedures
- Understanding of fitness concepts
- Self-assessment components
- Goal-setting or personal improvement elements
`,
}

var assessmentGradeBlocks = map[string]string{
	"early-elementary": `For this early elementary assessment:
- Use simple, clear language with minimal text
- Include visual supports and picture-based questions
- Focus on basic recall and simple application
- Keep assessment brief (20-30 minutes total)
- Include performance-based assessment components
`,
	"upper-elementary": `For this upper elementary assessment:
- Balance text and visual elements
- Include a mix of basic recall and application questions
- Add some questions requiring short written responses
- Keep assessment to 30-45 minutes total
- Include at least one multi-step problem
`,
	"middle-school": `For this middle school assessment:
- Increase text complexity appropriately
- Include higher-order thinking questions
- Add questions requiring evidence-based responses
- Design for 45-60 minutes completion time
- Include more extended response options
`,
	"high-school": `For this high school assessment:
- Focus on analysis, evaluation, and synthesis
- Include complex, multi-part questions
- Require evidence-based argumentation
- Design for 60-90 minutes completion time
- Include college/career readiness skill application
`,
	"college": `For this college level assessment:
- Design for advanced critical analysis
- Include comprehensive, research-based questions
- Require scholarly argumentation and citations
- Include application to professional scenarios
- Design for deep conceptual understanding assessment
`,
}

const assessmentChecklist = `
The assessment should include:
1. A variety of question types (multiple choice, short answer, essay, etc.)
2. Questions that assess different cognitive levels (knowledge, comprehension, application, analysis, evaluation)
3. Clear instructions for students
4. Point values for each question
5. An answer key with detailed explanations
6. Rubrics for scoring open-ended questions
7. Total points possible and estimated time required
8. At least one higher-order thinking question that requires critical thinking

Format the assessment with clear sections, numbering, and appropriate spacing. Include a teacher's guide section at the end with assessment objectives and suggestions for implementation.`
